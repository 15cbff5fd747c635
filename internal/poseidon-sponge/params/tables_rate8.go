// Code generated from the Grain LFSR parameter derivation for the BLS12-377
// scalar field; round constants and mixing matrices are stored as Montgomery
// limbs. DO NOT EDIT.

package params

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"


var poseidonBls377Rate8 = defaultTable{
	rate:          8,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 31,
	alpha:         17,
	ark: [][]fr.Element{
		{{0x971775a2bdf40803, 0x0d38e7d60de22dd4, 0x8a18a0e2806bed3c, 0x116bcacaccf56784}, {0xcf7ee7d6ff9c266c, 0x5e0fade0afe0d233, 0xf9171a2d04f8da1d, 0x12655f2559cb4378}, {0xa33477761ee894e8, 0x8472ac18eda3e34a, 0x9efc357cd1687ac4, 0x09e42e07c1ea762e}, {0x38ab2034796fd0fb, 0xb3c0d138762c3221, 0x7659e068ee779c8e, 0x0935ce2c29881ada}, {0x81b84197e0301f09, 0x48b27d4d20304353, 0x5ec2c672fbe75ac8, 0x070227d9eececc34}, {0x40cdd495c5bd3ba9, 0x04cfebce1f78de96, 0x7611a496275f6966, 0x0791611be69aa1a3}, {0x1669c35a1b2af770, 0x53224f5e9b585be7, 0xdb69f15dbfaa6868, 0x03b7259cc4195dce}, {0xbefbe16974aa538e, 0xdc1c3d950b492c47, 0x2945c801df7264ab, 0x06880da2e28efd73}, {0xf7e40ba6a8d77e57, 0x7327958e2a8795ca, 0x712289ba59184337, 0x06c68475207c59cf}},
		{{0x55c0de02de4acbd3, 0xcb509de8001f15cb, 0xb5a0818df06d4016, 0x07eb1804280e9e3d}, {0x418e9707769157fa, 0xef765a9a0f60534b, 0xa2daec6819214ac7, 0x02899a4f5ba14fce}, {0x0b2f3bca0c754556, 0x1d794b80b25ef730, 0xe03b64a8507f8fda, 0x0042520038c16fe3}, {0x2c3d714b9cc9e2fa, 0x63153d1f5e35831d, 0x538746a9cdabfbfb, 0x073cdebaff1f32f2}, {0xf2dd17e260fbe67e, 0x5a4c693504a86880, 0x0683b5e4d2650b1e, 0x0221c99b0f7a0923}, {0x7fb1835ba1f0e288, 0xfe64d398f00a3404, 0x4f1488c829a09a03, 0x01f99afd96c75cad}, {0xaebbf0c5e6394805, 0x47a6a21f60a059cc, 0xbc552572f76d37ad, 0x06e8c85b86cf19dd}, {0x7aada7078f688382, 0xfcc7941f6d0518ba, 0x698ac551a0c38c07, 0x123e58383b4a9640}, {0x7d3d1eddc6586b65, 0x2a659615143e304f, 0xbe9bb7e3510459ad, 0x04f1d50f3766697d}},
		{{0x8fff28993e9187ea, 0xb54273d0ec887ed7, 0xa117606763349902, 0x02c0a78081b10ec1}, {0x1bd97226fc1c4fb3, 0xe094ababa2bed992, 0x64d9a482f2f08f5c, 0x0bf8c834b2aa2870}, {0xf65a9500bcad60bd, 0x1a71974c467bfe80, 0x06138b119bcef1e2, 0x126ed30c79ba132a}, {0x7de6e5b9c50d6eb0, 0x6370da3f5c78eca4, 0xce6046a4b1caf3c6, 0x097f3367a16a78f4}, {0xfe87d882bb1db1e0, 0x5f97f9d4b493b403, 0xbfe3f45ae42c973e, 0x083568dcf9788b01}, {0x34f81d6c5728e861, 0xf1d741c296daa473, 0x95418662f0600fc0, 0x017588d591b4ff7f}, {0x56983e673f5cec9d, 0xb32caeac07b8ace1, 0x79eac56b1cbd44c2, 0x12290d8ade2ac2c3}, {0x2437620e878b3d73, 0x12aed77570b73cda, 0x5c3571c74d7dbc25, 0x0a05b2dc69217fda}, {0xe2b2dc9ee1e3d4dc, 0xeb663976b89105d1, 0x518b788e96ffbb42, 0x00eaa7e231594940}},
		{{0x014193b470a6fd0d, 0x8a2227c291ba8730, 0x81f894d6c3ea94d6, 0x0a3d0f070dc426b8}, {0x0bc8a1dde9786fd5, 0xc92ca01acf5bcaf9, 0xcbb22d6f9ea413b1, 0x0fce976471c2276c}, {0x067be44d84e4bae4, 0x5add88e03e30f1ce, 0x74444de9220a9678, 0x087081966d94d0a5}, {0xc98e72c130065ac5, 0x3fe7696dfb13d887, 0xd88653ebcef91af3, 0x0ff8f0812a2eaa67}, {0xf60914c5d75304ab, 0xb357c6114e172abb, 0x804c561dc8deb468, 0x00a08da852595994}, {0xb516bed1ed3439a2, 0x643d529b72524b58, 0x0270a8281155df1a, 0x0a55fb4475920b37}, {0x93ff0b2b8dc974fd, 0xcd45ca313af0d5b3, 0xb1f9283c017748b9, 0x04cd5c335acac90a}, {0x02da00a53acbcea1, 0x46e8b9bbf28a8ee2, 0x3c21cc6d30604bb0, 0x0bb56ce74ce4334c}, {0x30ab252db00e42a7, 0x9e5544a39cc0d4c1, 0x88f8cebf2047dc98, 0x0957f8da33d063a8}},
		{{0xb37c86eb2614550f, 0xbe84d1daca2a388d, 0x437fb3712dbf3ace, 0x05af61753dbe9c3d}, {0xb396c64c3f72b5ad, 0x0c118b5f501cc07a, 0x34b306219fa04e27, 0x04b3223778aa137a}, {0xeaa05779474cf616, 0xb40100c2b18a31c8, 0x55443a0648c36f5c, 0x001531c839a51dcb}, {0x85c1f3c3248a6476, 0xa1a568e082676664, 0x12003f59417da971, 0x0673cac395f1136b}, {0x008d30e9e2cfcaea, 0x336a26e5bfd87665, 0x4827c945b0927a25, 0x11afd11596889561}, {0x76d28a6b4bea929d, 0xda7842f150d3044f, 0xcd8570cf1c3d0f0b, 0x07e2de8f06b27e86}, {0x1ac2586bc1d4935e, 0x8f8d50dfb3b8cd48, 0xe3d6fed97ae1b928, 0x01c453a98af9282b}, {0xb780d785d6bd8313, 0x8f3bc6438bb90a65, 0x137d805b813d7e18, 0x09f16bbc9804ce5d}, {0xbd1c702650569cac, 0xf6e63d6130d00270, 0x106e736465cea669, 0x0c0fbfa6f24e0983}},
		{{0x43c4e574389aacbb, 0xb69f739b1855fb3d, 0x5e757c5156d6b24d, 0x003ef7f9c0663db2}, {0xfc26a6e1f3be5ed3, 0x6f913690680a213c, 0xd4da068c6bb08250, 0x0790e25690a87059}, {0x5b12e8222f8ac422, 0x4aba8d346923b0db, 0x81ed36992bc97ceb, 0x11c08b54076766ea}, {0x92cf0303463106dc, 0xce5dc2af8c3c44e5, 0x191354a3399569cf, 0x0f9f10b348dd0dda}, {0x0f69bf2c7b25b4ce, 0x29e125a07f657774, 0x50bc84a2abf3723d, 0x1112c5d278a73484}, {0xd1f054d1c9e1117e, 0x1ba1737c73d67bf0, 0x4ee56bb59e1b703c, 0x050c1e2464eccd11}, {0x2fc7886e09167717, 0x05f8d3d04a10471f, 0xbd4c03654255aa31, 0x10e33b5248f0ec7e}, {0xab726648ac2b3d92, 0x3395b862e6e66ca6, 0xe8b1134a64bd1fd6, 0x0b38119358e995de}, {0xf19f1a58703818f6, 0x3602ffda7cc93206, 0x406fbff9e2021feb, 0x01948eef17707d75}},
		{{0xfdaf38b53e116f05, 0x3238cf05ccac9da8, 0xbb51a14e6fd1ef4a, 0x0d9da5bd3c569ac5}, {0x2fed9bca13746539, 0xf130a65698beb4f2, 0xe8101e33f73ae9c3, 0x04dbbd65cf07f29c}, {0x437c8d62e1034971, 0x18872167960f3350, 0x35d9ffbc0dc9310a, 0x0d2526ede84f0dc0}, {0x887c4b3ddbcf6eb3, 0x905d78d865854d27, 0x5898801ce6dc2682, 0x11bfa8f417f727b8}, {0x0620deaf2e977a29, 0x3d302701261a3836, 0x610c118c63377f35, 0x0317150a68bd512e}, {0xac9820df46db318e, 0xb179311bff7ef6f8, 0x6d59115df389bcb4, 0x091a32b631bc55d5}, {0xf22f08844abb45d0, 0x374583b74187fea1, 0x5438bcbe3aa4b30c, 0x06fc1106f07c92f8}, {0xbc3f23b87c48c019, 0xf22a4ec476a02bf8, 0x6891f93edb1922c1, 0x06d78cf0307fdd1f}, {0x943a70e922bb73d3, 0xf2ef655be129e00f, 0xcff0461fd59c3638, 0x0f3e478906d5a969}},
		{{0x2ec4d6faf10204eb, 0x3880109d04cca8e2, 0x3fd282032b4b2ff6, 0x032fa7ac754c35c1}, {0x4b33d7d6c99b6115, 0x7fcf877b648f1737, 0xf1e9b89b803f1c6b, 0x0e408252314de0b7}, {0x928eb7a9705870ef, 0x6b688e4b51d62020, 0xf48f7d1ee6b3f46b, 0x096dae400926bd3d}, {0xbd86f59381e8d269, 0xff4215dcd9dcdd5c, 0xb8586aac3dc5db3c, 0x0dbb592c1a269ee1}, {0xb107327e21e4ef79, 0xf3ee74d809017954, 0x16ee97cdb54aa99b, 0x087444fdef6dc449}, {0x89d74857c38d5757, 0x41344bc1cc4d8976, 0x653903e1c9060e84, 0x07058ae4b531245d}, {0x0f1726fa3627862f, 0x849dcecebbf7417b, 0x032a0c98ceb497a0, 0x0788fa27d2777c5b}, {0xbc6200813bf25325, 0x099ac941366bb6db, 0x5728a417ab828ac0, 0x0e9831558102821b}, {0x331c90fb5a4c692b, 0x6a34e93603f49ebc, 0x9d2ee1ae4f118d2b, 0x098842de8d7171c2}},
		{{0xd1b7fc5b9e32c186, 0x66311d2bb7aa27ae, 0x7426d107d42fded6, 0x0f0b314a085cc03d}, {0xf1610563a1614149, 0x6d0cc64dd65b50e8, 0x49d96a31f0444c1d, 0x0d52c1518efff214}, {0x4e513a0136f2ff29, 0xd918491e91f27bf5, 0xbafa1d3009c10a86, 0x03842cdcdc747db1}, {0x082074e629cd0d33, 0x266cba3a6fe9726c, 0x66b95d8bec469d35, 0x0062c10c729fd2cf}, {0xa09b3865da08b911, 0xa3e84d9ed651a554, 0x2c606eb6ed7e70e1, 0x04479462f0f2630d}, {0x04538016d68a8bef, 0x757a08c19595fa1c, 0x89110e8993699ccb, 0x06f74b53988147f5}, {0x2b44ca8336b73a8c, 0x588442f41fca2149, 0xb338f3d71e549b07, 0x117af216fe26ba25}, {0x9ef845262d7393a4, 0xba918d028a4f629d, 0xbf9847b5a941cec7, 0x025a13fffd06ad4a}, {0xf938a1f00d729fe7, 0xe040b54cd596a9d6, 0x8843c41d76d261ca, 0x06ffe5654ac0c34a}},
		{{0x8bae36f2d9d55c3a, 0x2857eeeedabc6284, 0xf7062155f61ac0c5, 0x10bc7308b0ba47eb}, {0x73cc42f8a2ff873b, 0xd1298b07cbdf93da, 0x0b5e6d80b91209cd, 0x06b0206f3f7852e0}, {0xb57632f812a77119, 0xf15571a4497d784a, 0x09e0a1c45a6c203b, 0x080ab8a795415f3a}, {0x9944a368e3cc066d, 0xa7000423fcdfc125, 0x238d70eeb34fc69b, 0x0953506273b3eb5b}, {0x6e05879f322db350, 0x57e31f00e6bf560f, 0x67f75edd050aa530, 0x0accb7992979f716}, {0xd1e0f70e9005ffe5, 0x1fd544a87b6af9a3, 0xde2e7ed6eabecc90, 0x120f5becf1e43cac}, {0x371999b365d23746, 0x996e1fc287b2dbdf, 0xd7240f7e09d45315, 0x0f67ac824674dccf}, {0x6889847178fa7957, 0x4b00856b9c075780, 0x9d45ec9b4169c008, 0x04d3dcbc8e158160}, {0x9cfd3eabeefc9864, 0x049008654a540e55, 0x380861228f05e334, 0x0f92b3e3f395e41d}},
		{{0xfd1204f009d14ec1, 0x38bec5fb9e484c35, 0xf41fd88bf9c668a5, 0x076633629a7f8280}, {0xaa6a33a234be3c1a, 0x60cf884908df95bd, 0xa859112c619273d3, 0x113c7b7318982d0f}, {0xfc58a5dc3e1124ed, 0x881256b24d0529fd, 0x060f02f8ef220a65, 0x0326d14b9ff707ac}, {0x8cc164b925f192d9, 0x952fd3d47971df84, 0x7db4698142abc5ac, 0x11756a58085d775d}, {0x7372eac28216ebfc, 0xb956a1e1d0af0819, 0x87e3d2b50db72fbc, 0x0ae53b9ac2b8f8c6}, {0xa585a21f295c49cf, 0xf544efdea2be1fd3, 0xd8a6baa80c9a9b32, 0x021120e71cebdd09}, {0xb23466faef2964ca, 0x120af47dacda4aad, 0x9f51bb40f3345ac7, 0x021d8ead48935f49}, {0x5c3c651f6b6b2b5f, 0x3bacade06531d6bd, 0xbef8ab8df26b9d4c, 0x06ebae213a284341}, {0x2df5e9e1e78c2b97, 0xbb54a95b82c9094f, 0x761c3e8e94b2612b, 0x01ccbd098a13d5bb}},
		{{0x66f865a3c535d656, 0x7c152f0a92673645, 0x229c1bc299924524, 0x0dd14bfb905ae7e6}, {0x42316068322324a7, 0xfa7f32aaa1179d84, 0x248f1a9e63e255cf, 0x0effad93a25dd9e2}, {0x9a0892040c07c99c, 0xc50b1f7f031645e8, 0xe49bf65e526df6ee, 0x0b870e0a4f9fcfa1}, {0x03735b6aa4da43fd, 0xf53c480bae3e074f, 0x482ad9da532b0e11, 0x015637e8e26b099f}, {0xba01d3a07b9e749a, 0xf3133ab1594714a0, 0x35770984263d1a27, 0x08d9d2b98321101d}, {0x1fbbbffe0f443429, 0x8a7cd99c977fb746, 0x787a188c7c471328, 0x0fc55b0fb097e35e}, {0x1a39c2f6548661b1, 0x146c9e095bb0cc10, 0x62d2d5f83d8ad2b5, 0x071ebf1fce0c974e}, {0xb6a6bc17b0cf6e6c, 0x57b39a470dbdec58, 0x1395ca9de7438d6f, 0x0edcf2baabc1dfbe}, {0x438fef257ebeecfb, 0x8b8f30cd7b19f006, 0x014f45165920b228, 0x1294dc5a1390fbe3}},
		{{0xf403245503121cc3, 0x3423e6478694646f, 0x270385b63b541ea9, 0x0182d1a259c6de3e}, {0x976b74f600ff5739, 0x99dd927e81550483, 0x03f530e0a99158d2, 0x0356462efab6e5ee}, {0xfe3f500ed54ac121, 0x8335386d4f428de5, 0x2e019d7e67173522, 0x013d5825740b2b4c}, {0x263fd5f8ecfe5e11, 0xecec606b45a86093, 0x92a23dd18f584d34, 0x071d6dedb8316177}, {0xae68c9e54c586b37, 0x1ac7b6f40d785732, 0x2a389643189687f9, 0x0aaa5c2f3f9d5744}, {0xe55bb55c3a5204ca, 0x68b6bfcf805ab7d4, 0xde6526718d565c98, 0x0a234209536506f7}, {0x08cd42e2a923cb4f, 0xd8b22a3c9173069a, 0xcb1aa800370d0a5b, 0x0a41a5dc175925b3}, {0x9c53bf6b1ccd1d32, 0x59782f3a78736eac, 0xa10c8039e344bf23, 0x07bee0acc461cef0}, {0xb2af3d6c40e5f26c, 0xc955b3b664359677, 0x5949d08360b9e2c0, 0x0071ee24c46a96a3}},
		{{0x7b7daecaa19c4b64, 0x34f95b9044ba87e6, 0x0bc0e9802edaaed5, 0x03873c3f1bc5ed89}, {0x8977f4b25920152a, 0xc1471ba44ac454ca, 0xf944d5c2df0709a7, 0x12311a2ae47c7af4}, {0xaa90cffed5a0257c, 0xa4f3c6592201faeb, 0x4172cd935b1b3337, 0x0dceaf6c8dcdf7af}, {0xb88409f94aed7f06, 0x01a8086ef4b9f4b3, 0xf45a42eaa56703d7, 0x04b9bc6ac4f239dd}, {0x20c8542da91da97c, 0x64f9fd3a77063605, 0x334b6e698c1f17ca, 0x09644b481fb32ba6}, {0x13dc8b3b4c6eba4e, 0x5122a1533f7895f1, 0xe69572e5b5d1b54f, 0x00c04450d11b8972}, {0x3f4f141f310e6565, 0x6a7bdd1f903b8c78, 0x542ac6d446f9e11c, 0x01dbda62de31c7bc}, {0x9d93dbc514ec92a2, 0xa2c1aca02dbe03d3, 0xd315db77dd29a962, 0x094edf6f74c2d9d2}, {0x63e4433a92984aae, 0x0e0efd4f54394656, 0x88769744d566fe9d, 0x00dc91e137e83b03}},
		{{0xaf7e9cacb2759b11, 0x745d8e253114d781, 0xad6166ce9f438d52, 0x041035afe8249033}, {0xa441ee0f9344ce99, 0xfb3ff657b713f912, 0x6bad46833d5e23bb, 0x0b8736e007394bb9}, {0x27a1adaf9cf57540, 0x8dd416d1562e6605, 0xd49c815f0619998c, 0x0f5d7499e26f1778}, {0x0566282bbda72d99, 0xdc1d15e4ce5de4e3, 0x8ba96a9dc7f0dc06, 0x0836082adf39d9f7}, {0x112fd4ee26ba5ca1, 0xa94e3262e5d83547, 0xd8a0602090d538cf, 0x061b2e0818cd27b8}, {0xeb7cec314cf4133f, 0x4c0d807b788f890e, 0x203906e049a01cf7, 0x04ef4b52ea8557a9}, {0x34882915b51f831d, 0x60fe70f7d8690874, 0xaee2c6d002fc11ab, 0x0397463927199246}, {0x03557f611be3c62a, 0x0e03c7bf987dfdea, 0xe1cc2dc2f1e1186a, 0x036756c0a6187ca2}, {0xa574416568f917d2, 0x4c78c268a6923099, 0x6b5fd2f0032a64c7, 0x0098ea78bcee1ba6}},
		{{0x1074155c12eb2aeb, 0x67d397cceefbd34f, 0x9847a9b47dd9b332, 0x0e8b869869ce15a5}, {0xbeae3ade0759d764, 0x74d6d6d234d36dfd, 0x5817fcf639e21f25, 0x0ce8fc51d58bcbae}, {0x129eb3f2dc5ef23d, 0x2752d1afca65caeb, 0xd8c1669b10cb17fa, 0x11ef24705fd90c80}, {0x37966173cc2c9dbf, 0x663661a280b6662c, 0xf6db6686a8c2d9ab, 0x0a1e1d357731b139}, {0x9abdb76c89918142, 0x3df82dd3b24b40e1, 0xd7e963871d2d4ac0, 0x0d8b329956485532}, {0x222f4ac5462b8ab7, 0xfd12c65608d8af5c, 0x2690b5230c3b64f8, 0x04106d5674f7d5c2}, {0xe075a8950500608e, 0xcd711815a542dc51, 0x1d937353eb9d0d91, 0x08a57768a63e6e0b}, {0xe8db46f4eac93337, 0x38ebfb0029f81684, 0xd73009af1f026371, 0x10aa3fd9e3d5b2ec}, {0x8620d237621403b5, 0x76f47a1f2a810e40, 0x883d1d1ca2bf178b, 0x089a622ebd3a3f11}},
		{{0xeac724b50c772ae4, 0x1d516aa2e96e3fe4, 0x36e66bb3ea053d8a, 0x08caf9b3b6b88082}, {0xda99114944de695a, 0xece6764ec14909e9, 0xa0719bb4f5e7259d, 0x0adc38c1f793c060}, {0xf8d9281f8177ad49, 0xbc1d26e4f6199e80, 0xb1e9b3ae8fe8462a, 0x007d9b221eb980e4}, {0x963abed135c5b03c, 0x451058a24df0de76, 0xf7117f3ff07dcc87, 0x0c9e82a336753143}, {0xc8b5f2896b755a62, 0xccae828a2b84cfe5, 0x21de0bc3dda0ebe5, 0x0839fac7bc68ae76}, {0x559d840b8f552c39, 0x76eae238f5db3a72, 0x2f5d7c2fbef16aea, 0x008380c6fad255d7}, {0x5800c5f1b59242ce, 0x7c8f3fb93b0532f8, 0x3ab305436c600b6a, 0x06f4d1c67982bd34}, {0x8d4aa63e9d984320, 0xb6af7792f6bb2132, 0x2b1a378c7d2c556e, 0x06772cb1bfc0592d}, {0x753943eb0b601768, 0xd9be98b147bc4508, 0x616bc30c5b1306a8, 0x0e1fed7e619591a6}},
		{{0xe027d701bd1b4eed, 0x2628a1b36503350a, 0x4e2dbf126a23a873, 0x034fd7e7e2146393}, {0xbe49770f51aa400d, 0xb657ce98ff694ccd, 0xdb0a953c9f938d4c, 0x10e0e950f42a654a}, {0x085658ec652b432a, 0x69c6a49685dcac9e, 0x534488d1493d122d, 0x0c6b0cfb936c721a}, {0xa79d709615734ee5, 0x07d489f14393f457, 0xc12647b024522354, 0x08832d7e27d04864}, {0x37bd19dd488992cd, 0xef0d841afa0e513b, 0x3d65a7e5a682fafa, 0x01dee962462470ad}, {0x860e1da0927aadf4, 0xef8ffe6d8710fa92, 0x05ee991044408b99, 0x08d00822146a29f6}, {0xea27dd2b7fe8b561, 0x26bbe9b622d09b3a, 0x0e8b1ad714e69a0c, 0x0262ad687c36c1fb}, {0x3dad5a1477f5649a, 0xd4a092911db6d09b, 0x8bab97f4beb4936d, 0x061be6a4fa0ee26e}, {0x9546a9db91e83e09, 0x61cea8644b7d9eb9, 0x382c2d13f720be8e, 0x00fdba7a54aa10b3}},
		{{0x0e3c3fe33154ea90, 0x607e0b4f319df57b, 0xa199d84bf59e6f79, 0x0483c23e8dd9fa07}, {0xcbe04145381c0abf, 0xbcb231ff45e2ccd0, 0x0f65bf8204ebcdd9, 0x0a7e8655cbd3f548}, {0x0cbabb0b3b08dba0, 0x5c98142ba4fbb917, 0xbebadb2cf8ffc595, 0x00f59a1de9565c07}, {0x896891b817abeec2, 0x544dbc78bbd2122a, 0x226799af201bcad8, 0x0ba52bd31220bd77}, {0x7bb70e6527c593f7, 0xac20ae18e3467bcf, 0xf2797b5644570b2f, 0x0814461270db3c1a}, {0x7e6378730694d380, 0x5fe1fa13dcc787a8, 0x48ea8952fe6df4a2, 0x02ec1564cac0225e}, {0xfb8d0b8ba84e159d, 0x5d7ca8495e11bf90, 0x5c2e2398bb996331, 0x02eaa190c7e85ed4}, {0x542a045ec031fe36, 0x5709d069e400ce2c, 0xcf65cda0de3cc78c, 0x0b44cd9f4e10aaf9}, {0xf415e280d99e9323, 0x64070af4f45969ca, 0x3bd5cff30d0ddc6f, 0x10f6229f7f374b86}},
		{{0x4239db4a61e6d40e, 0x62f707234336af54, 0x6245dec45d953cf6, 0x0cb0a2adca887e87}, {0xd846675ccb640dc5, 0x79249483dac22d86, 0x062d5b73ddb764df, 0x037793673b6b30ca}, {0x39f6383f9f25a8c9, 0xd62c104d94a4d97e, 0x17eb7ee52ef3dd82, 0x051b52600bab0176}, {0x10a7e8372712fc16, 0x18dd8d3043f74b43, 0xd76ba7f8c536b76b, 0x0eb9dc854e071ae0}, {0xa0cd6f2c394a3e99, 0x4bdc0a731c737d4d, 0x9f1526f7dde84130, 0x0bac668f19fa181e}, {0xcea660b10c524f0f, 0x47a93e424b5d84d5, 0x7753611af5d41941, 0x00d8adeb236fe68b}, {0x07a3151729b23112, 0x4db76e83259ecb27, 0x9620626859c727f9, 0x126b59ea34dc19ae}, {0xf663a977cf8d26d5, 0x3f51a6e341df51e6, 0x8bc86596aa11db60, 0x09a75b62b29a3012}, {0x0adb10e20fd67ec4, 0x6500dcafc8e3ce88, 0xe8ca15f49020331a, 0x04e65ebf24b74427}},
		{{0x944bffdfc7d5d47d, 0xdab0455265083161, 0xa83b2d0d983e03f3, 0x0bc23068cddded61}, {0x23e10fffbf7eea70, 0x0d780704eafd8018, 0xa0da9ad2fccf9665, 0x08d32722d94670fd}, {0x332f1d533bc8cb31, 0x31b33b957fb7cd9c, 0xd74eed82ab63cd73, 0x0f342b61a9cbc46a}, {0xe55c5b49c3b38d43, 0xf50e27eb93ea2524, 0x2d71e5403308f84a, 0x1244e89946a7bca7}, {0xa5b73b5052c3b02c, 0x1caad2f3750abf7f, 0x7c36cfddbf4a87fa, 0x0ed9b971c0e5cdf1}, {0xa754c965bc9df147, 0x2a037b84a052f1c2, 0x467a61d5d244546f, 0x079d01c2d35f7b9d}, {0x3dd61a4a7f79df05, 0x0f0b3c1e7c16752d, 0xbd7683eb1a76eb8f, 0x0272c88d2e40a475}, {0x4c368602273554c8, 0x33eb71d354ae330a, 0x2d578bd7d49eee66, 0x0813365b1c14b45e}, {0x61aaea08809337a9, 0x68348f49df35d973, 0x8e2f0057256601cf, 0x0435f9ce89925ffb}},
		{{0x82e2372295fe2d8e, 0xf323f0324cb25911, 0x8061a21bb9edbde8, 0x0f091aac537bfce7}, {0x7c7dc3fc3e18c648, 0x4c107a0421a1428f, 0xa82c29378c66c734, 0x115c944a6356768a}, {0xa4579e205ecdcb5d, 0x4ceb21a6303aadd5, 0x16661320ab1425e5, 0x0a0e2c0e70b0b33e}, {0xbcc3290f9bab75e0, 0x977e7815378f7352, 0x2fe00b6856e9a6b2, 0x126ce35e80539181}, {0xe5d13574e18ef60b, 0x748e9ef43e48c6b2, 0x39f4bed46eac4c93, 0x07672054adf7cec3}, {0x509364c4913d3065, 0x9e4512279691ac10, 0x6cfaccfcf62351ad, 0x100cbf8c134386c0}, {0x1a3f2b4fd55e86dd, 0xd4ca0fe21c1e373d, 0x84f78cff45839b93, 0x00396798420bc276}, {0xb0b744bed016683f, 0x31f6e6e7fc868f53, 0xfb8fc6f191058275, 0x00609a2ff328cf30}, {0x44f4cf175829381e, 0xe90bd3e64a5e8dc5, 0x7b8396dfd699267f, 0x067f7b07bb894a69}},
		{{0xe9066793042bbf49, 0x96e590d534398369, 0xdbceee986e343974, 0x042c293c5116ba29}, {0xfd62f252b45fde07, 0xa62788461517e6b6, 0x1ced59ca1c9e8c6d, 0x01824c91710272dd}, {0xd03a62b25e305a42, 0x0123fe97c1759b58, 0xa3f031e3c5556696, 0x04837949b8cc3351}, {0x119f48d8d155d77d, 0xfd4cffeb4413f5b7, 0x08b72b743a2bcff7, 0x123596b0bdd9d383}, {0x6bd6ff54f13b8523, 0x93a596d6a1376e23, 0xb94ce11138a69e74, 0x0f6dd3bb1ad93794}, {0x47e8ec1e878cb12d, 0x287c9f24c4fc42ab, 0x09936b6ebab7d39f, 0x121e58c54ac7c1f9}, {0xe78b07922bd7c0e5, 0x566ad0a96b14b85a, 0x99c99f1438dfdcdc, 0x0c87a75f16217140}, {0x58e4cef7cfcaca63, 0xfd69e79d516ae623, 0x9efaebc50606bc4d, 0x011a1d6746b95eb1}, {0x8fc108e28e61b1d6, 0xb65e60ecb475cb92, 0xac66cd6dc263709f, 0x0e53fc4f86e16834}},
		{{0xfcdab7ed7e5cbe86, 0xdad48050df36afe9, 0x55b4cd0f91846349, 0x0fe488d34b4f6bb3}, {0x1288e1f19258634f, 0xfbf1824ff5c894b0, 0x41fc613ef210d02d, 0x02d8898bb037ae4c}, {0x059af60817ab77ed, 0xfa69cb73b655d82d, 0x9263bec12f3f8de4, 0x0541328b4a135452}, {0xcb13b28912a54ad3, 0xf61fee9f00ffe5f8, 0xc5bf8a7c65e41e5d, 0x0b3b28935e00d195}, {0xaf78333fb1d2cfdc, 0x1f65220a410854cd, 0xea031a6016759cf0, 0x046b6f67fbc60b8e}, {0x718e188eff5f43b7, 0x5914bfcf1bb39472, 0x853e391de1d54279, 0x0eebc6c8729d8380}, {0x6214d1f658e73342, 0x263a906ffdf271f2, 0x62847bea7552b9c7, 0x0a659f9a281ecb3c}, {0xb64e2198d649ffcf, 0x3b99b3551d57bc7e, 0xb875cd584c8487a6, 0x00b7ea300209b74b}, {0x92df2bfa508624bb, 0xc8418ba6bfb13195, 0xf003780a2199323d, 0x035b2caa6ee74a60}},
		{{0x10e134d0ba056348, 0x64e1cc6ec0c7e80d, 0x5b1d7f86e795ae48, 0x007f2e0cb303f2a5}, {0x45d12f0a14bc8371, 0x2323796685e9c9ba, 0xc93a6477056eee25, 0x0d2b99892713e6f3}, {0xbae898149040afad, 0x8e1ff44c39180054, 0x6d3f13fc21d6b1b6, 0x0161e2def847b61d}, {0x1b526231e158a87c, 0xb5a76b6526be8ddf, 0x225b03e40f65d833, 0x129d388fa122e611}, {0x0d901626741f1c67, 0xa06c5be6a7787292, 0x320ec3acfc2e17e7, 0x0cbb5b3ad4298511}, {0x942be3f4a3441402, 0x8f708203fcbb8ef6, 0xc7f83eee5bfb679d, 0x09819e465f500697}, {0x3064757a81dd5477, 0x4cc33fc237fc6a50, 0x9344d720073af95b, 0x11066a1855ea99d0}, {0x7366f0eb59eb41af, 0x35596469593ec304, 0xac921c711bc8538d, 0x0ab46ae1df308f92}, {0xfca93ac5d82b3eea, 0xff371e5af00dfded, 0x29019ed7e9ce2a58, 0x0aebd23712c82baa}},
		{{0x973090607ddb50d5, 0x7129c4158887f793, 0x22413fab598fcfdd, 0x01757675423126e5}, {0xc3961c964ff23c3b, 0x4fb6fc40f7cbb9bc, 0xc71f5e79fed72cba, 0x0de429c7c2173065}, {0x3aeba67afbd584ef, 0x682419bc8aef8e81, 0xb46f591d30412e35, 0x050c524c46c1c236}, {0xbcc99aa03159741e, 0x38af467403a6cde0, 0x6ae17f30fd7342ae, 0x0002dc87666bb986}, {0x864b10927324a1b9, 0xc79b355411bac318, 0x208606b96832d435, 0x0189bef22770e7a3}, {0x7128da2908b519d7, 0x31be79d746749b27, 0xd6790a78ad4a590a, 0x018ba45890f567fb}, {0x39009ee42e338aa0, 0xd0df35027d248fe5, 0xf7ea4bd210c97630, 0x07b172a2c1cc97dc}, {0x4ae01f9b33f2796f, 0x877444afbb967bcb, 0xe789296ab31b6cfb, 0x0f9f8726211f1b55}, {0xf72748f71ea11a1a, 0x8ddda8d19ed80c8e, 0x2f4cc51cf620457c, 0x0fa8523a352c423d}},
		{{0x1b4d77a8fdcf1067, 0xd0f884e2c05a52df, 0x1885a5014fa77e0b, 0x08f62b1a71449842}, {0x0482564ff20d12c1, 0x1e0539e6bb96c907, 0x0755b9794e0a3253, 0x0ff1061f95e250ed}, {0x34fe2a54834334b7, 0x2db0032bcfe630d8, 0x1f5f5d8e05dfa8c5, 0x074524e5c32af148}, {0x94f1ac44ff61dfcd, 0x069fda4fad38fdd5, 0xd77a6f439b7aba2f, 0x0cffa391ebaf2c1a}, {0xc650a34ee7d6c199, 0x87f07f4d6375895e, 0x4619e96980848bb3, 0x01fa2735287c7927}, {0x4b4e303ebaaaee8d, 0x63f1ffbf75e04038, 0x057aeee013ad6d40, 0x0f9c7f7669f49789}, {0x8b21ed614afe08d5, 0x2000d4b1215ac6de, 0x8a8c93a357a297b1, 0x0fc5b04bb7055d03}, {0x4916bb59a506fc96, 0xef98639914613488, 0xdde13be0f91e8b32, 0x0b020681fdd7ec97}, {0x433fce53e7f46963, 0x6d24ff0bb780e529, 0x6a940dfbfdd29e14, 0x0560acde24b1a5b9}},
		{{0x2db85599b3be3155, 0x5ff88cb8674d2397, 0xe1b12eb779e62bbb, 0x071aabb29c31987e}, {0xc01b7c0aabb80065, 0x1b33c3004cde1fe1, 0xae1c45c4c5fdea04, 0x068655984b155b79}, {0xf52c3201752c62ac, 0xa2ae837c4c76906d, 0x178d2e80c4813bca, 0x11e7b48455056e09}, {0xb746eaf296a3155a, 0x9acb497b3b52f0b8, 0x992f55413177442f, 0x008f492129563096}, {0x2841e5b64de79f55, 0x534c3ecb896b84d0, 0x26aff952d18e7a9e, 0x02e876cc2caf0e1c}, {0x84b665dbcd0f26a9, 0x569c556c5d5b7f74, 0x5daf2cb0dd3b4392, 0x0d5d75599baed1ee}, {0x4bcf9003a1fc4030, 0x887005a6f9671857, 0x09cf2bb13820d7d6, 0x030a9fa8ecd135c0}, {0x949fe8333ff500b0, 0x7205b32c712cc1c9, 0xfb45014b9535259e, 0x0954eab95cb4e161}, {0x11d6bd09704f2dbf, 0xae7ab01440bcaac1, 0xe8dc23323606670a, 0x018d1168d1d63c93}},
		{{0x5e9723265cf29041, 0x82a61fcf6d7e55e5, 0x2c5bc942938a0bd3, 0x0cb3a476b606fbec}, {0x27ddb2b4996d0d75, 0x51b5e23fb804dde9, 0x960fe27b558549c3, 0x0befa561998a8543}, {0xa2ff1767b47f287f, 0xa23cc571645fd41f, 0xe60f36cbf05201c1, 0x0152491e33484fac}, {0x9fc25117276743c3, 0x182916329c84c384, 0xf3788e7d1fa8dc5c, 0x032dd7d8a946911f}, {0x6f7719f93bf3bef2, 0xf64f29fe6f378ed0, 0x4c7081d825b07e6e, 0x035116e60a042eb7}, {0xc4fb0162866f92b6, 0x3ea3b15c0ac39df4, 0xf328a6f8dd1cf51d, 0x0141deb3b9f4890e}, {0x64af31acf6ea177c, 0x457886d9f9ff089b, 0xf7856e43110db9b9, 0x036de62769b61aaf}, {0x75529b299cd9e6d5, 0x04beea6938727e8e, 0xe74d3f8d71399c9f, 0x0e165cbafcc84848}, {0x7d7db51f784b82a0, 0xea89fe5cd4a1d780, 0xe9922ff0e62b78b3, 0x0548d1b0a7faf99f}},
		{{0x4cb71ef58a91e571, 0xbcc8c69b44b09a47, 0xf15a48710ed5b479, 0x073a7a756751e3f7}, {0x9f567fdaa9d8d41e, 0x8c9f4fd358074ee2, 0x63d0e2f5082711ac, 0x0159228ae7f09d87}, {0x87ef3ab5ad737bb2, 0xd023c5be1ceae7e3, 0xd5962861980d2020, 0x04ffbb21068bb4a8}, {0xa3277a6da85287ac, 0xa36196c09faee5c6, 0xb5fe24ba70f9355a, 0x02a73e19405126ce}, {0x3c36b0b12f776bd0, 0x72c74861f95a900d, 0xcc3406b672c4863e, 0x06eaf9c952a34918}, {0x814817514f42d246, 0x39fac9d080d8afe5, 0xc3f9eb9ff1ce5e4d, 0x0212063909d64760}, {0x9d9c578420d42937, 0x949496329712f1b7, 0x2124ea95b0adc2e9, 0x0673a08e116e3fc1}, {0x8ea20deb843a74fd, 0x8924991ad586c072, 0xa36ccf26ad1a5581, 0x02e10bebbc75982c}, {0xfd70073200e019d1, 0x68acf4fd10ca669a, 0xefcc4d212789f7c2, 0x032b487e38f82f0b}},
		{{0xa850ed3a7281f7eb, 0xa5e9fdccffc16720, 0xebc52596f4420909, 0x10db0533ecb75a08}, {0x1df685a9181e5f68, 0xb19bd95e5968b1a7, 0x8b4fb7ce667bd257, 0x00cec4ff333edfc5}, {0x6371e4d8616e348b, 0xe4f816735a0ecd93, 0x75135742cbe298d0, 0x0c73a5618e45fd56}, {0x59df42e5ac9a8779, 0x6e0ff6ff36920a43, 0xc3669648c1a48301, 0x0a3613fd9459a92f}, {0x37800420960e0e4a, 0xe6b1853c197186c0, 0xdd3ea3fff5cf58f7, 0x07b4fcccf5f986ec}, {0x493ee17286684422, 0x02b4495718089863, 0xf25bd4aff4409b7e, 0x11bfd2d787024ce7}, {0x1af38795e967eac9, 0xd0b0d3d7caf59180, 0x5dc8b6a1db1ab659, 0x0d11ca7d7196d74d}, {0xe74e6a7978308fac, 0x1d379449271562f1, 0x56f4d9e107db8d62, 0x0797c81aa7ea5629}, {0x468e74ed62b36c76, 0x2e6d8fe582efa72e, 0x16968cbf28f40822, 0x0368c18942fbc330}},
		{{0x46392412b6d99dc9, 0x13740511f1395876, 0x73a457997aa2d524, 0x11dfc19be07fdd2b}, {0x70095c6c25aa0298, 0xd8dd397ba6461cbf, 0x462a710ea325e967, 0x0193dc23b37ccb81}, {0x261bb19571e42fcf, 0xc6b44a8ba6a088ff, 0xefa7713586e2a136, 0x0b75cbf34c8bdade}, {0x9eb743eb7c70f7cf, 0x858f2f824a3e3b6f, 0x9d06da005bba8a28, 0x0dd58625f7d8ba2c}, {0x00906b620488be69, 0x638857aec2972a14, 0x2966c965faaec841, 0x0b3e19069be42c7b}, {0x096a6d94a21fd818, 0x8cc42fbc6f7557c4, 0x2cde67f06b5e232a, 0x03273eb0ff5d2332}, {0xeeaa7fdec69aa67f, 0xc29e85ab3361284c, 0xa51311a2747c9bbb, 0x118dbb357c8fb563}, {0x0395210d7f327dfe, 0x31e6348d45d84624, 0xda2d495eb2c65074, 0x051efaf1f2bb7c6c}, {0x2655a85f45b25bbe, 0xadc383f2d66eab6e, 0xbdad5f86ce461af0, 0x0abd6731f02feffa}},
		{{0xc352353321f1b09c, 0x844fdb431e3cf237, 0xe50ea2433ab02150, 0x0aee8c2a1114782f}, {0x54261a9e46ec09a9, 0x6ad85e84e1011a9c, 0x45ceee985d0509f9, 0x123c4f150683fad1}, {0x21660b988b87fb13, 0xc24a1aa44168dc33, 0x97d578ab9ba381a5, 0x0111684ac6516201}, {0xc141ebf84d389c9b, 0x7ddb464e2a372439, 0xa1b051c19071f4d7, 0x10b2339aaaf4ea8e}, {0x0f513760c8d49570, 0x44319602f19e30c1, 0xa62718c34b2e8d8c, 0x0eeb7b4df30d118b}, {0xc76b8732f1434ef6, 0x4252eac5df70aaaf, 0x1d2f69e0f5756fa3, 0x0593c877be5982a0}, {0x8586de80bd2eddf5, 0x00082ea7e113dbc6, 0x759f2972b2e621a9, 0x0adca9e616bc7d38}, {0xa4741758e3d14a28, 0xc1ff6470649171fb, 0xc76c255b17dee034, 0x015cf931662e188d}, {0xff6636e342421a43, 0xb4062de61a3827b9, 0xab8da5385cdc2902, 0x08fd091b1903f580}},
		{{0xea81d5bd14119478, 0xc4ce3b9e386dae73, 0x88db745603b2b39c, 0x0cf5477c5a5ae408}, {0x544f32976ca8821c, 0x2f783f7f7ffb4d3d, 0xb97239db13d02046, 0x0cdb4765d5e4bc05}, {0x8b0e64446d9edc8f, 0x1c1b7c0a3c181650, 0xe28907564337b0b7, 0x0d310858a7d45d2e}, {0x125b9c57ac836fcb, 0x044a34432291c71e, 0xdbabf4cb8a7527b7, 0x06e2f96b7a87e223}, {0x1796c1c3f4dda140, 0x4463fc9c22818fca, 0x4d1a30c7f1fac564, 0x0e31829073a41502}, {0x5ed4517ccdf2887b, 0x173f0e2711db2c5a, 0xb71a361502124e46, 0x01b3016533140ab3}, {0x88cf1b33b4b76dff, 0xca2c288a9085245b, 0x7444d4f899aa8804, 0x042846b37d8998c7}, {0x4a9d431c538ad64d, 0x581ee5e3b3563ad5, 0x981ee2036c1fe92a, 0x019425743358a3ed}, {0xb93bc3b8ed2015c4, 0xea2941156d2dc760, 0x8771867ce54d572c, 0x0af1e48b26df066c}},
		{{0x8c3eb2a125df085c, 0x20ef2eda8ad0b334, 0x278edf12407de2d6, 0x00d05e88bf1f36ec}, {0x58a2027d92d91246, 0x362d4eb84fdf9b48, 0x9ec5186206191973, 0x02b794aab8bec9dd}, {0xf0111c4ec888eb2a, 0x69c59420e1b73f4c, 0xf96351d7244da57d, 0x091ffc26975767de}, {0x5c4ba95f793be1c6, 0x7611fd0a5dbf7e34, 0xf66fe9ac1ab9ecd8, 0x09081a7e60c704c1}, {0x74748863e50cb037, 0xf34a15f43b6f77f1, 0x15926e5da6afa910, 0x0de8dbd17ebb2d4b}, {0xe71d5d549850265d, 0x6c8352655a5cf9c8, 0x09420149bcc47d99, 0x0768971b37fb5041}, {0xab0eb5845bb96527, 0x7cc79c72b167dfb9, 0x753af1281a89d506, 0x0a3eb3ef5663ca17}, {0xad16cc2a5c2cca3d, 0x01754f922162c673, 0xec1f7726c62fa72a, 0x0748326dae712ab7}, {0xb843d3a42535fe89, 0xa704434f61e7c70c, 0x91f11060cf3bfc7c, 0x0d28f205aa929b00}},
		{{0xa6ec73a0ac8cf323, 0x37ee3c717d18eb47, 0x3702427c0acb76ad, 0x0c5c6f1d76ed5b0f}, {0xc9ecd5898ad9b2c5, 0xc350024d33ef34b5, 0xe939e8674cdd6728, 0x11e32a4cb3896d7a}, {0xbd707dee4a35cbed, 0xe3f628ded539640e, 0x5d28dc88b3dc85ea, 0x022c801ae2c66e9f}, {0x5d9810b0929205e6, 0x755774883130d7d4, 0x4bd58a907909754a, 0x08e455f81c865932}, {0x2f4d72991ac8eb86, 0xa13af222d995d8b5, 0xba159423101ed99a, 0x00161065d7a60ece}, {0xcff3c8d2bb9b55ce, 0x4ff02fb4510b43f0, 0x868b16e6af7b4fec, 0x0d7c1c571a4df5cb}, {0xa539ca81ab88aa82, 0x7689e5d163c68f89, 0xd23d2e0dd670554c, 0x0e3381a6752ee31e}, {0x813f88d8e68e33b0, 0x06d304137f0c5e53, 0x1371450512b0d67f, 0x03c7d2db2166622a}, {0x197eec626b115b34, 0xb518865bc4b12d74, 0xe15099b81fa8e7cf, 0x0b5716a33519ce88}},
		{{0xfc0956aee277c06c, 0x70023ec59b2ad2bd, 0x323717820bf40d17, 0x0f925c078d97485d}, {0xfdffcb311cfa3502, 0xea384798fe619564, 0x842972c4d671ba2d, 0x02f1155ce9b16d87}, {0x209d8c14419e1721, 0x5e43e3f248d8d48e, 0x817866a9a9b0962c, 0x09d685fce3de5c8d}, {0x912fa40436e77e4d, 0xb0185cf0c4d1a4f2, 0x91a3f11434fe9fc0, 0x05ea892cc78e3abc}, {0x25549e88c00f2b37, 0xd017f5032f949575, 0x85f7ee9871a66fe7, 0x09befce9b6f63ce9}, {0x8a44cb7c170d03bd, 0xf94efb48148ef6e3, 0x0c73b8289eefc832, 0x04a13333325fca6a}, {0x7dc886922008f623, 0x242706905402933e, 0x5781ea53a5acf7ec, 0x029a7504290ea16b}, {0x143e63d4ed159d06, 0x6cddda020237d723, 0x607885e7635e1fc4, 0x0b46a872fa83f563}, {0x6c552c0fb1a64ef5, 0xdcab07069bdafc31, 0x3696e38286704369, 0x046db68d7dab3c64}},
		{{0x535f26ced9266dc8, 0xe335b8031fdfee06, 0xa055cf1989e213ed, 0x094ace0184827304}, {0xee429c234ddc65ce, 0x362c66ff2461e94f, 0x21658e2a9ad7828a, 0x045018081675ecd5}, {0xbf27d2fd16ef3eb7, 0x004fe3897d9e3738, 0xae68da69fa574cda, 0x0e0f5b30d0c2c9ca}, {0xed2b322e56fb2bf7, 0x49cdff4a924c1fa2, 0xd319fb5dcd08b8d7, 0x074add2aee302ced}, {0xe3916dae3c3b3c53, 0xbcd84ab7c1ee14ac, 0x1e076b0927297f63, 0x111e170c11195b04}, {0x9f341689c4579678, 0xbb6b34528fc4adb2, 0x3abeb28fc8f21615, 0x059f1c038a606f1c}, {0x336414ee8e2e3487, 0xba97774641c92aa7, 0xe713297c203e1f89, 0x04eb19fa929a4a64}, {0x5b71612363d2642b, 0xad64c1ad3112646e, 0x6159f53aa7c46f77, 0x0de5da14c6748027}, {0x1a1452bd843fb0c6, 0xd5627031f682ddad, 0xec89ca134b955b55, 0x12a91e59d3752283}},
		{{0x0d50d7483d725b64, 0x5c7aea0655de62f1, 0xe16887abcd76eb23, 0x11289af3812c8514}, {0xb4cf4334841ec075, 0x9a3eed5751750b6a, 0x4f22d39aaf7a5d62, 0x088aef5df79a00c4}, {0x280cca1105dbe74f, 0x44919e50160e55bc, 0xb2b4a1c44a3c56a5, 0x079677b7b714c60c}, {0xe09f761cd13c5c54, 0xc656d6793a8626a0, 0xa5b21265a32e956b, 0x04652600cc886d34}, {0x47e281b57c89a911, 0xa8285fe3b5b72afc, 0x39e6fe0b69539616, 0x107577d4ccc82540}, {0x5c6e6d4cf6516923, 0x61bf28ef8226cf74, 0xe552ec0e737376c8, 0x03ef32e11dd351ac}, {0x61802190a74b0a04, 0xf3e26ccd31988b87, 0xd224e8103a70f285, 0x07754e7b0c54be3e}, {0xcf9019e6661311b8, 0xcf67d8701340ea01, 0x720acfe40a28bb23, 0x119a6b161de12f83}, {0x0e64bfc1f39e6509, 0x4c1fc0b4acba1983, 0x2ad62c8b0ed27228, 0x0d5faa6e92d82fc2}},
	},
	mds: [][]fr.Element{
		{{0xd6c7b140f4848e16, 0x53991981a73f41c1, 0x4be72fee32ebe848, 0x0df5c5e7bd0c338e}, {0xc6eadaff3c128b04, 0x37c430ae1daec691, 0xe12922da820dba75, 0x1121dd73267d6d57}, {0xe99118064cfd0999, 0x25955e3ea47bfb3d, 0x7d57a10eb3c32639, 0x0db4791b8ba2a465}, {0x17c5f21695404f89, 0x0446a4404843074c, 0xef9f24fd37e56874, 0x02717c7ef0ad3b18}, {0x66181a54c8882d3e, 0x2721041f61e7cb30, 0x18e05457b053cbc9, 0x0716b0aab526190a}, {0x4ab198049ad2a762, 0xfcd5ee7185e65901, 0x12afac9a1a98e79e, 0x112412f37ecf6d71}, {0x05977bc95c8ffc5b, 0xae9c3b72131b58f2, 0x58086f110a950eec, 0x06a9b761c5ef90a6}, {0xbe34f5b012e7279d, 0x5e535e33d50a512c, 0x94cc75d43719fe44, 0x0d291df320971baa}, {0xb562b38623afd21b, 0x9de78a6bc3032948, 0x3c7c29ee858937fa, 0x0672bad7e17ec57c}},
		{{0x3be64ae4645633cc, 0x89aaa8aaf6976edd, 0x138954a0d44f5a31, 0x1218f3bb36c54c98}, {0x5b5ae7361c904728, 0xe99fc43e281e5105, 0xa60245cf68b79fea, 0x0a3f6e14c7a3fa62}, {0x1971fe796f41f9f1, 0x70edc283d9712c9c, 0xbd00d1f094e6b9b1, 0x0e053670380f7f5e}, {0x6f3c7c07e946ecd5, 0x08c4adcb4e3f113c, 0x892b66f480649acf, 0x0617db174136360f}, {0x3ccb9e54223efb60, 0x1e3593ad7dce36d0, 0x61039926ad4067e8, 0x0eb059337edb5c52}, {0xc85ebcb0d62f8259, 0x3d21b03cf53ec969, 0x0825bfcc74aa0c8c, 0x101f3dfbd8bc9868}, {0x4fadac6cc0a2e5ac, 0x8686c2b4fd4fcfee, 0xb5d8a17dcdefa73a, 0x009e120ff7251365}, {0xcf755ed96e25e886, 0x64739f53d2d1ac52, 0x4d85bea3a720554c, 0x04d03c412f043f11}, {0x000cb2452f85f3e3, 0x1439f848097fb034, 0x401a582753c50180, 0x02d1852a70c1c114}},
		{{0x005159871fad3a56, 0x841a57a2c079b51f, 0x7deed4d9c6edba94, 0x1196db92d6652a19}, {0x42cdc48afc2ee7f8, 0x2dc73d19384daa35, 0x2aa45d7f504c69aa, 0x0291cfdbfbfed694}, {0x701c0e1fcb62117c, 0xc2ab5b08494a14a4, 0xb7e021e0fb15f190, 0x0b5b9791448032cb}, {0x1e09d6182974cc8e, 0x305811ee1b828f9e, 0xd1b9a7854f4eb591, 0x11485b9ac6177422}, {0x76e9870bacf4ee7e, 0x9c8cd77812f7a4bc, 0x855b5555d2b6aa90, 0x0990e8a94f4f260a}, {0xa7a0dac2a459e557, 0xf3fde73d34e8467b, 0x660f3b7842ae9886, 0x0f9220009d0334bc}, {0x6c53f1d8df3493da, 0x3b40527c91c0f897, 0x8df4da3d7161bb8c, 0x122f545b1a1b5765}, {0xce286d9addcb1684, 0x7a04bae657778c15, 0x005cc2f6cdf71655, 0x10b36ec6d163ffc0}, {0xf63deeb026c71150, 0xfef46767cb8ed94a, 0xf77f3d0afe50cda6, 0x0be361318ffff681}},
		{{0x7961b94fc089f2cc, 0xca05503ad4c57698, 0x43b917d31c80e19b, 0x03a5d1861a6cfd9b}, {0x1d7e38da506f2512, 0x299adda851e53e03, 0x3a27b7c519a6a606, 0x110d8a6cbc5179c7}, {0x13038cfd6abdac6a, 0xb693c1a089e49a5f, 0x4b6601a60629b013, 0x019d5b435931f4a2}, {0x89e0c6761c4e83b0, 0x45162a6556330b97, 0x830e6d66a3bb2160, 0x01b46b4aaf021663}, {0xb88537cb15610593, 0x447e8f4aa11aa82a, 0xd19d09b0cd95c465, 0x0bab0c047c8ae6e3}, {0x5f4f1f33b5579e5c, 0x2902dc166796c925, 0xb13ad84b2284c6cc, 0x11e435a052d02943}, {0x1c6d16103ab53bb3, 0x41ba87d79ae0deb1, 0x3901f1645c1945c2, 0x09af3962cda8291f}, {0x413287542efc5125, 0xdebc1216851ff94f, 0xf68e07787c41051e, 0x11e0230a58480d1f}, {0x07d32028208ffe23, 0x183b34c8da294d09, 0xa6619623ff66c777, 0x0bb6d1f977106a18}},
		{{0xcbdaf50ec8221514, 0xfa84a3f3cf69fca4, 0x3b503c6330232209, 0x0aa94843362fd81a}, {0x11fb8ae333b3c8d6, 0x51cc5eab6393f1e1, 0xd8a77e16a6083912, 0x06fd1e137e9037c2}, {0xc8180661363881cd, 0xeae28ebce6d1aa39, 0x09d51d382ec55a78, 0x086f371fe2b983b3}, {0x9ac8018c37a16f81, 0x8467172003919a58, 0xd4b2b213614640f5, 0x0551e13c9280cb1f}, {0x0fc512426ed338cf, 0x0d84ce3b161c13d0, 0x239a11e00c7b9038, 0x0ed93020baea75f1}, {0x2fcd6d083cd1fb03, 0x3f46cb889110b890, 0x787f4e4464492f2f, 0x0571c7e4a228670d}, {0x614e95908cf0f431, 0xf7c20c40ed1c719f, 0xd661f25b5ad3a366, 0x01bc60b4f9f54eff}, {0x0496928e388d0ae5, 0xd7fdc7c33c4b5e60, 0xeff635ddc0918f66, 0x0be6f51001cb846e}, {0xebca1867be11acb8, 0xb4c37924aae11821, 0x74a93b175910c7ce, 0x05506b4fbd4174ad}},
		{{0x2c163fecda61edf5, 0xfbd6eaa2d5c0a7ba, 0xe863873822c8fb89, 0x04c4773474592ba5}, {0x5a5eced02b635348, 0xd448ba78a6792648, 0x108fc760c99a629d, 0x0bfad0fc3fe9bd7d}, {0x82766842803ed53e, 0xad21674701a23a35, 0x77cd8c8f33a45825, 0x0da8e145c7a439ce}, {0x42fee821643c63ea, 0xff7a534620c21334, 0xb3487c2a38063e47, 0x0ac98489e5415830}, {0x1a2ccda84eba33d5, 0xb8d5f2cde8332b04, 0x5941f25839bd5f64, 0x0f75184579fb8218}, {0x274ad1e55044a35f, 0x0f01d138c917bbeb, 0x99ae7f4b054289e1, 0x0248c3a904f85ab0}, {0x84d45336e5056131, 0xd7c645cca5eec525, 0xe4a077aa336ffe58, 0x06850c88ed459c3f}, {0x7333c0eb60d6a3ae, 0x689f6ee0520cf65d, 0x0d21d89bf247f4f2, 0x1122f383b6dccb4a}, {0x386c0b1a8f9c0b91, 0xd210caa3f7ebcc31, 0x9a8700d05c03ad5a, 0x0d69b4c3e4a07529}},
		{{0xe8ebbd91e7916b86, 0x6eba640928a624fd, 0xeb6ccca933dcff90, 0x0a0474d047ed57b5}, {0x9598fe4b1e1df65f, 0x9422e239f13db9c5, 0xded575b34cec2e4f, 0x0606926fd8f4d4a3}, {0x3e42c2c4ea29fc56, 0x9502b864a5fb5ea3, 0xf79997751611c577, 0x05b1b3238393f8dc}, {0xd1fd2e5b312048aa, 0x4b4d22cfddbc51aa, 0xb474c19f750a4242, 0x1077704fae154ff3}, {0x05afe5ccd59415f8, 0x2ff5a0968962e3f5, 0x08c169304d73e68d, 0x0dca639174b3af32}, {0xe7d3f87e8393dce4, 0x3f987757400b6215, 0x997b67dfed426623, 0x03137caee4896e78}, {0x3e688e08968d4283, 0x48bc81de2c6425bd, 0x619b1e7fba77a844, 0x128d4c95f43a3dac}, {0xa05c4a099d4d00c6, 0xbaac96b15d1c64d0, 0xa14731981ca9351d, 0x116d0ff09e2bc145}, {0x24bab86bf1856e4b, 0x80c919f5409f03a8, 0xb8f4f3a964e4fa5d, 0x05da3f4df70b5588}},
		{{0x2143eca386a47fea, 0x60035a065dd7d465, 0xb6b19c3d360bf779, 0x00e55d27c1bf93d4}, {0xc42d3a2e2319279c, 0x7a5674de1955e8e3, 0xc0fe0714b5940a92, 0x0bc634c5d4a51c9b}, {0xb2b563ef4067c1e9, 0xa4ce24b0d9e909ac, 0x0c5d46e581c39b14, 0x0b155c3dfaf2482c}, {0x68b2ad1e6c7f3e4f, 0xd06a7a996e7a3088, 0x28a7841d6f9d825b, 0x0b617bc8e8e21eb9}, {0x7dcde26815a9c170, 0xf605f8942fce0090, 0xf7174cc4691800e3, 0x0aa0a9fbd79c6d78}, {0x59ee41cf1183a876, 0x1266fd5aaa5c2652, 0xcd843009dfcee440, 0x1206776e732d103d}, {0x8da226986f9a2025, 0x3afb94bd0d1fc7ba, 0xcc1e46cb90523398, 0x06f5afccedf57f24}, {0x59455c98111b2204, 0xecda27b45cc11490, 0x617ca6b831a21969, 0x009dcba35a6e7f8d}, {0x61c27fbf75a53a7d, 0x87c7616297676839, 0x6485191282fdb0e0, 0x0676899c5fc0bffb}},
		{{0x3e45baa8bce40a99, 0x3bdef6aa8ddb77bc, 0x77d87e6d4b6513cc, 0x0a219e08aba92fb1}, {0xdcccc450c235de00, 0x6255359cd8c28a13, 0xc6a1c4a82e1b3d9f, 0x0737a86e564e560a}, {0x08be4ffb77300375, 0xd23f509675063653, 0xf941dc0984e01402, 0x01e4cd3889768523}, {0x80c0a5fde6234890, 0x9de98e36ec24ddd6, 0x10d4a176860bb2d7, 0x07ace181182c64eb}, {0x02ac52d2d32fa6d8, 0x2e4703f0d601b0a5, 0x95f55025e7635b58, 0x0fe0a43b7387bfa6}, {0x28e67ede3ce0814e, 0x9265b16763f15d24, 0x1d9c03725a6e1788, 0x09b53b6fe4d3ce7e}, {0xa05e1ee6679abc74, 0x1412ff016d3f1383, 0x3ba2a4e16c804c14, 0x018c747269b5a657}, {0x6d9ac1c7b3d1b509, 0x7899fa3954f4c3a2, 0x95ff8280b919cc5f, 0x048e07e6b31fe7df}, {0xf9d3b02831ef50d5, 0x9e097f0f6688b750, 0x0263eea26f7448e7, 0x04cd4ca449daf411}},
	},
}

var poseidonBls377Rate8Weights = defaultTable{
	rate:          8,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 13,
	alpha:         257,
	ark: [][]fr.Element{
		{{0x28135f9d831ed70d, 0x8a1ecd02ecbc9933, 0x2a50766afbf71900, 0x08d08abfcb8d9f0c}, {0x5ae01a0fb05801d2, 0xaf8970cd15bfef14, 0x5cb4c99e3c598f14, 0x06073b83b731114f}, {0x8e84ac0943348e9e, 0x7d1779298d5d8ce5, 0x8df66bd4eda039eb, 0x000431cd3e39cedf}, {0xef60437865c5b9ab, 0x2ad4e58d467714e8, 0xd0a5686fb6ede98f, 0x0ca2d17689c620ed}, {0x43303a968b5deada, 0x945f2a6d9140edde, 0xd8deb3e7f67df31e, 0x0be57be98b565c38}, {0x5e12bb83e7f0bd71, 0x11a40bdf1efb274b, 0xc5d803cb451d7d21, 0x0366a3701c664ef4}, {0xae201ba70ecefe63, 0xe92e48abe80a15aa, 0x0122e1ad96f1b45f, 0x0f58ab7867c71385}, {0x5abca171d8ac337f, 0xd12ac6af5e91acd0, 0x63a74af3e7ee3e49, 0x0d8ca2aaca13cc4c}, {0xae5b2b0b1d68db1c, 0x7668947c76358f54, 0x177f2462780e13d1, 0x103ccce763178cb9}},
		{{0x7d7f4515e4657ef4, 0xdf8dd7e9a8d3d000, 0xd70aff4504fd36db, 0x0cea89662c54db9a}, {0x35f0ae1f4d35f190, 0x97ba3e8aec91923b, 0x32203f5df35f2ae8, 0x0af832875d7ddc0c}, {0xc42b4b787a9df8b5, 0xf4aed92c92261ab0, 0x93d279f906650a79, 0x04c3e7c4d7369748}, {0x735e01adf4cd6470, 0xc0e99affafaf6435, 0x5344425348bfec85, 0x08a48618ca86d876}, {0x2b0d24383638c0b4, 0x21878eb6381e69a2, 0x49a7eebf324f6dd5, 0x0adee67277885d90}, {0x99e53e7ac2eddb60, 0xb191a6c9b4defe42, 0x2c45853805c2ee6f, 0x088ec00448184e5e}, {0x4a31d57ea019bcdf, 0x02101ad1a0847b2c, 0xf225b87e3fa5ee77, 0x057a60da45e23acc}, {0x2cb468bd3e31c7f0, 0x4590c70dc23b6a8f, 0x0ed39e1e6f643d58, 0x00c4b84f19306210}, {0x13a43b6715782f70, 0xd2d9f643d9b61701, 0xec094113c7f7a0cd, 0x0cde9b15e281b4a6}},
		{{0x50f56e643a69e1dc, 0xf08a76f32f62b099, 0x547ae4a60a299f60, 0x0557fdfafbbabb80}, {0x2b9f60bd199d0d22, 0x3c25a6fe48b01b84, 0x7bd6a807cb44018a, 0x093e19a6b42819b5}, {0xd6076647b9c3f005, 0x69fc93979f55d775, 0xeb300e765ebb675f, 0x08ca90c60f9732c5}, {0x806f2b8bc491ddcd, 0x1b3e7b5b6f94ff37, 0x0593f41fb5a7800d, 0x013ade46186e8e72}, {0x2f88bf27c4a62fce, 0x1888a758d549a668, 0x2f5e764090c1f2f6, 0x0b31db8f4b4f5b7a}, {0xd3c275c4c3eb2de1, 0x2d107ac3100d3593, 0x02beb82b50d4158c, 0x0d1abb8c29996cd6}, {0x2a60a1f0460fb8dd, 0xd783dc459bf3afaa, 0x7cb3641d06b00e7a, 0x0b35dcf7845f1784}, {0xf1100cf29331e32f, 0x1ad0343ac8d2006e, 0xb5e2b53166cae759, 0x07c68f16fd80ed01}, {0x713e0a302de697ec, 0x1f6e7a9543e36c5c, 0x1b85b1e505a0555b, 0x04822cde8461b5cb}},
		{{0x1ae2d74bc6a0e4bc, 0x2bc8080ca5f08e61, 0xc961fc5223c78547, 0x05a1b7fd71ace649}, {0xff58ac892d69a1d2, 0x0cf24d1020930557, 0xc765540f4a8c3c7b, 0x0b9fc17711eb86ed}, {0xf52a27ece5e11cab, 0xbbe9991a90afe03b, 0x0392e55e6b4f0e74, 0x11672358ce0a15b1}, {0x06d4a752b1c556e3, 0x4c6efab6854eec36, 0x8c22b6483a85a5ce, 0x030eefed9e9bd80a}, {0x84073ddd195de547, 0xae96c317baa06321, 0x2ad2d76891b041e2, 0x058405e71c4cc368}, {0x80323c745bed7552, 0x7f131e82b830922c, 0x3617e876f2501765, 0x108c20bf2f6c19a3}, {0xaf7a2b8390a8745b, 0xdb0d5b77d74f1122, 0x2ac167f43e774aaf, 0x08cf9d8da7ff09bc}, {0x787b2b3c36631248, 0xf3a625ee1ac29f16, 0x5eef87b6b5a6c072, 0x0059987249c628f2}, {0x2d8ac27784721b81, 0x144fa64f6744c5b0, 0xd16cc3116e4de06d, 0x11c323ef85e2930e}},
		{{0x443d95a1a81ee416, 0x5e76b371343d12d8, 0x86dd0057f3b89910, 0x057c729d0b9d75f3}, {0x1cc2a99e1f3ae248, 0xe3b5407bde2b628d, 0x7e125577b4592e62, 0x01efa26c1c23587e}, {0x9a7c98e2c8476068, 0xe3809e65b19cfe62, 0xcb4bf7a71d3ce080, 0x06fb9b7680c9b72c}, {0xc4de7397d276b2f5, 0xaf772bcaaf90b73f, 0xd98d9382522aeeb1, 0x0161beba154de458}, {0xcefafab8f18afeb0, 0x7255f0b6e557e1ca, 0xfc797b3d8fba0520, 0x005fb0308c829f96}, {0x8ffdc2c6d84a3171, 0x81ec40e38fd166bc, 0xe09f9afce000db8b, 0x06c54df55427fd62}, {0x257e7de160e3519e, 0x4ff917ea4ded61e3, 0xc48d37e26da8edcf, 0x10a43c1adb2fe542}, {0x5c7fd221e2139574, 0x28255d5ab29f46cf, 0x6ffd79b96238bd54, 0x0bdcbacac7afb393}, {0xfa6dd9f2813189ad, 0xc9eaf44f2bc3df36, 0x061118716b897786, 0x112c6b9c04f7ac6b}},
		{{0xaaab4737c8e5761f, 0x98ba0401bc3e4149, 0x4c3e80dd80b84bda, 0x0726c3230a10f36d}, {0xb1ffd875f72bc92b, 0xf6c8cff85eefb1b4, 0xe9c95b6663d44f64, 0x121e8e5b3f2479ef}, {0xec5f807483637c7f, 0xdd9e97647cc86657, 0x5fd1c6cd247721cb, 0x0cb115d1065687cf}, {0xb9b6852d8a0900d4, 0xe4ca025b1b0dfa3b, 0xfb37c398510a3130, 0x0d2f2949151b949e}, {0x0aec6c33f39f37cd, 0x9124878d18e507ec, 0x386b05890bd61053, 0x0e2a1bd5c300853d}, {0x166d85c7d02d7441, 0x9401645f9fa0cfce, 0x265290661afae163, 0x003df90722f6b711}, {0xe45741e534d0f956, 0x1d860616e4ceade9, 0xbf50165e21f7595e, 0x0e0c9144711c44b3}, {0x30c57a31886a9bf0, 0xc51f52cdc0828769, 0x4341caf0a3b2e2bf, 0x013405a6238d3475}, {0x54feefb4f516a664, 0x7ef0250da4b4234e, 0x5b0be318f259a29a, 0x0218e4bdb5bc68d4}},
		{{0xf083e0d84c0930bb, 0xbf7d2a5240e68ccd, 0x04b9e7de526ec42f, 0x0eb9d0ae8ea2a6ed}, {0x9bc24211e59a5f16, 0x4bbc8cc65ca55618, 0xb8881fdd8e69d648, 0x06dbe8ee5ce6eef7}, {0x2800129ce4a61016, 0xdd1cfde18077af99, 0x92968a7060d89baf, 0x0a7f9d391bcccfa8}, {0x198373b58ab51225, 0xc77444d91c50e36a, 0x2597f70aea092b3c, 0x0233f45eaff2a726}, {0x21a0c4bee92a8690, 0xdc4c5f240ade055e, 0x7122297fbe795b15, 0x0227243f038d2ab1}, {0xc56989617d03041e, 0xea9d7b68cf9b50f7, 0x39937a20e15780fb, 0x04465582506129e7}, {0x8466c7a1f457a188, 0x395263058b36b77a, 0xb43ad84a07abf1d6, 0x0db1b825cc2e1a55}, {0xbb5fb7e0e7dfa1ab, 0xcf5627ffc2fc42c1, 0x45e86bd6823a6a00, 0x058a7c42538f9f98}, {0x4466e6cc02465537, 0x018d9261e4360f08, 0x36137ae47c17de67, 0x00790ab460115093}},
		{{0xfe5399d16836ec93, 0xb008f2cce4fe9db0, 0x6ffdee2b6c6ac22b, 0x0f896d33081cbab2}, {0xccf92af7d8a1d45a, 0x697bd957dac8a399, 0x3eeac502ab1315c6, 0x0a836c4025619b8d}, {0xd7974221e40c648d, 0xa28e73a410503fed, 0xbbae6c14910be364, 0x02644e64298ffb15}, {0x18b13aa81cffe0dc, 0x3f0b9edf39a06757, 0x4cb1ae524cecfb36, 0x0beaae03028a2693}, {0x3cb440f45c89ddc8, 0x0c15a776a1a418e8, 0x426744c496bdb183, 0x0178449fa777a079}, {0xd64837ef397719bf, 0xdd043848980fd82c, 0xee262cc7be5ffeb6, 0x0729d3c322ea7cd9}, {0x363b6838c79f4945, 0xc75954ec7ca3d45f, 0x099c00cdd31e4b1d, 0x06a105fea577c2a7}, {0xc67bb73cebc75e06, 0xa6bddc7829a33a2c, 0x19a01d6accb312b4, 0x06366b9df0af4fd4}, {0xefd95ac4728ba232, 0xc1d2502c57c6f250, 0x35f157c01d95c4b8, 0x067202f38f2ae818}},
		{{0x9e291762ba538109, 0xbe0eac431b56ba5e, 0x4f27d1cfb10b46ec, 0x00aa7392c1b4bcb4}, {0xfb3bc708461ce43a, 0x87721416535768e2, 0xbd9ae573504eecbc, 0x07ca6a87ebc5dc7a}, {0x6e49ae07d7bd7e23, 0xf750656997faef5a, 0x779d313b6e9c9171, 0x02d1165cd1ff8609}, {0xf50071d06a9ad5fc, 0x9532110df121819e, 0xa592b6a16f241bb5, 0x0dd1b343c34c3739}, {0x31f1c3b1fcd5590b, 0x03038a28fbcdb38a, 0x3937de8282366a56, 0x0eeda0fe3dd72c44}, {0xc69ca97e22b10efa, 0xcf4641a9e800d1e8, 0xb8c889328ccd5b93, 0x07ba90151795d289}, {0xb958bfdd9a506e69, 0x64ef60f1c35def84, 0x7ff5c81329aae908, 0x0f7a8d7955dbfbe3}, {0x8ea9575b7788f675, 0xad668805b4099f30, 0x2dffc4a27ffeda8f, 0x11f431a7ee732447}, {0x8fd14e244965d16e, 0xf91a5972ddba094e, 0x681235dd5fda7a4a, 0x10f012f10bae5d29}},
		{{0x7e9bb58532895618, 0xf816aefd18a64ec0, 0x07be6f7105321324, 0x0e5999e0f12d8f4b}, {0x1e487a8223dacce4, 0x033bb91b285dde28, 0x3bc9f4906784c406, 0x08fd7f33c75e2301}, {0xdcb472cd0536fa5c, 0x4227397921c83b2c, 0xf3e603757ec29d5d, 0x00ccd8ba8598c42b}, {0xb0e284151af1078b, 0xad1a36ab43a2a25d, 0x114f0a6658a936b5, 0x088ccb546fc3d493}, {0x646f3779ca8d48b0, 0x501c364ea5d9e3e2, 0x63ebc4def6229525, 0x116f2745855448a3}, {0x81e84330a78a02bd, 0xc87dbd9f80279aa3, 0x1e709c95775f6880, 0x0436eb524f61676e}, {0x974ac03b51417124, 0x9b93c014a6267e6c, 0x6b2944f48f6172ce, 0x0b03b7fa046d4b08}, {0x459010119f476601, 0x357f52d0960e95d4, 0x441833fa89e21372, 0x0ea5d2abbc2effa4}, {0x3916be56fea678aa, 0xb0ba1186544d9ab3, 0x1e5cf156f7bd45ab, 0x0600692f43fd8436}},
		{{0x28ccf5232ec5ccdb, 0x3adb14182d219ea4, 0xdc683fe5991e02cb, 0x043ac4c87c793e0d}, {0x00e5cea41d5ee045, 0x65dddc03d84411d2, 0xf36dad4b9da95319, 0x0c1ec0b3b8c8f57b}, {0xc19b02315471a269, 0x3cb1c34c4ca320d7, 0x879d99e654ce7743, 0x0d036517386a4656}, {0xd2d750b1006d7b6c, 0x41ef66574f62a2c5, 0x9fa00393f84b57e0, 0x0bac692a6d696b96}, {0xb1ddf4c533bcef83, 0x080d6bdee75ee781, 0x9e4e60da79392eb2, 0x0bf9b5289c36f23d}, {0xfcf48d439fbf5b59, 0x317479462a320dcd, 0x49304a02fbcf1724, 0x0d78520a49fa7916}, {0xab8d8a379639a550, 0xf5ecf3d216e5db24, 0x0abde8ed68adf0df, 0x0108812954f07f72}, {0xe5d27702f35403fb, 0xe16d6f1e193838b4, 0x3033273e0c17ee8d, 0x06eb74e38a029367}, {0xe9c26065065e7866, 0x7f482b93a6fbe964, 0xfa28e72b5750c035, 0x0d75139f6e12eb42}},
		{{0x662ed6a9fb2ca2bc, 0xf2ef229af09a2c2b, 0xdb3f8909acbcfc09, 0x019c590bc9f002a0}, {0x61197ae256647bb5, 0x4416a4090078f685, 0xa9f5b0d2ccbd3f16, 0x0d21baa0997adbe1}, {0x0e5293a57b5e82f4, 0x79bcbedc77d684db, 0xa26585817be8d4a4, 0x0b7ef351ad88b34f}, {0x6189b7ca742c6e5b, 0x66ab078032394637, 0x2dfd5bd9803810ed, 0x08c02113b96341d0}, {0xf928461efa2c9435, 0x71d589a059faabfa, 0xdc63026495a57256, 0x07162f5bd2a8c31f}, {0x36eb9bf8434aad4d, 0xd5832068a6941bd9, 0x15a954aab1abeac5, 0x00b3e5fa28173bda}, {0x86c69c5edc4b9a48, 0x48caceb8ce649447, 0x5544d273214e7926, 0x03f1696619063c7e}, {0x8b2ae26c1c49e720, 0x60929cfe723444f9, 0xbb4e7c3a7a81feb7, 0x088f0894bfb3deea}, {0x32f14742aeaa54c5, 0x89d95af46a715228, 0xe28bb49f00ee40fb, 0x082e01b4daaf5f67}},
		{{0x97107864d504cb0d, 0xc9655856480631b5, 0x981ed129e5c8e0af, 0x0437203a2a0a734d}, {0xac09d4fe41534146, 0x4a28833e30b905fc, 0x673914c56177958c, 0x06d4695261948bb7}, {0x20c6f020381b5826, 0xff23d58a3d44c38d, 0x3e01cf9833695cde, 0x0aea4b81249b70a3}, {0xd34c56087e4a256d, 0x3e13cb047f7aad84, 0x027b69b37fa0ee03, 0x108bd8fa0e1c3104}, {0x94e909e1d6584642, 0xb5698b1e3255f997, 0xbae57685c2c2dbc1, 0x0d7d21766b2f2b78}, {0xff3192cca04c4e96, 0x245d10edfa5b9d87, 0xb08e455f20ab1dfe, 0x0383e92b428d9b95}, {0x2787d661c12c6248, 0x460e02d861497327, 0x639772ff53afa9b4, 0x05f376b474fc2c4d}, {0xeabb876b9821f3c3, 0x1d85eab1e00becec, 0x74a663173488ea5d, 0x07f9606999f2e80e}, {0xc54369fb31a9a52e, 0x4f2477a70c0ac74f, 0xcda1ed8b55140dcf, 0x0b90308f885c0743}},
		{{0x7c9939fbbbaf315a, 0x987f56e46bb93061, 0xdbe50a1b5b884f3c, 0x0a877ac19cb53333}, {0xbffab8b720d8b7ff, 0xed4621f6a9a075c2, 0x2522ebf854e0a0a1, 0x0bc352d2178fa192}, {0x21a765106b78b3e7, 0xe8dd65d1e6d47129, 0x7397f584c0ce9290, 0x0b40ea521e3ea21f}, {0x28149faffd37307c, 0x42fd24d8698bf9b5, 0xaed7eea8fc0c55b3, 0x0787157b1144a282}, {0x97a7ca0b2f094020, 0x4dc70ecae1f7ac06, 0x4b8099467048fec4, 0x0c59228e7418f0c8}, {0xa7b12007cfdb8367, 0x8ec4dd128fb9ea6a, 0xd00e01ad28e16c06, 0x002c071bb30ad3f8}, {0xfe78fd3ffe1f3b0a, 0x6df22147544e371d, 0x152f0918bd568140, 0x0279b3b02250351d}, {0xddb2f13a7e500a88, 0x71501dc03bd329ee, 0xf21ac3891730a9cd, 0x0d8aaeb83e0264c8}, {0xaa2d6cfccfe96052, 0x483b1c3053dabd26, 0x18a0fa9638d01eea, 0x02f91d9561aadaf8}},
		{{0xd5756ac5371ef8d0, 0x638b8e42b0d87613, 0x44ad18dd3fe38abe, 0x0e362313f8134c83}, {0x4fa88d64cc6e5277, 0xc746b33dcf4f617b, 0x1c84952a5c2d3f99, 0x101d0c5e83bc9cf0}, {0x44918c1c1e0928a2, 0x6ec7de105eeb955f, 0xad0588f8f3e2e7cb, 0x0edac0a3bb22a827}, {0xf783ed15d4e2be2e, 0x5bfa9e1dd23428a6, 0x2ba3ccb1aefd90ad, 0x088916bff707b59d}, {0x0420114ca810bcd8, 0x4780e18c0e34aced, 0x1b4f4744e329221f, 0x0d7c5642f51407f2}, {0xf3352a3ff3062fcb, 0x0bbaa226446903d0, 0x36113bc01f182cd5, 0x0926258238ff9939}, {0xf92cdbdfacc8d127, 0xee51f818559ec259, 0x781535b6653cb654, 0x0e17c5d8897df62e}, {0xe618e25d0b2ed0aa, 0x9f4ff60b91b27354, 0xc59383ea648099b1, 0x09ed75e6959f2d97}, {0xabc61469de5dde76, 0x46b66cff891306c5, 0x13c91d96245bb425, 0x0ea90821665ff101}},
		{{0x499bfd3b4014c00c, 0x5798a14010eb7710, 0x5e5998f0ccdfeb41, 0x05aa8c1295fbe06c}, {0x826e273f7443f097, 0x8522cb6ef958ca52, 0x1f2e7de7ee3efd6d, 0x06bdf0a1129c98a6}, {0xfd9d0c2c9573f564, 0xb3c20de32446a98e, 0xa51c2af8299f3938, 0x032f4894dbcfb8f1}, {0x499763adef02f2cd, 0x3e91f7c53a67dba7, 0xd6b186bd5f669933, 0x07793e734c70c89c}, {0xb20021970458c3de, 0x7322afc517a2d2ed, 0x8f6a380ac9c9a8cc, 0x0ebf25f3b5b21ee1}, {0xb6cfb247a58d2d1e, 0xc549b9ce98d2609e, 0x51cc0893421bc7dd, 0x030e31df95f0d537}, {0x721363a76bb71ed2, 0xbbed1661cb86d6e6, 0x4d75a62de257e618, 0x02e97324cabe2dcb}, {0xb0c6d8304fcaabab, 0x3061072b66d8d300, 0x612c7029810e2a4c, 0x0978c17e61975849}, {0xc9a5faa6cb1397ac, 0x3591345f91b3f5a0, 0x251c0e3c28a532c2, 0x04dcb8e76a8e4abb}},
		{{0xb2a14712897ed6f2, 0x0d8f334917f8e184, 0xf3c9022820d84fc8, 0x066ba84ebf34459a}, {0x08c1469e4f72dcc3, 0xf5e38a7143ccda20, 0x21c928c9a31fa653, 0x0868a815b5526a3d}, {0xd22e0011f10fc1b8, 0xa1bb486a0e686df9, 0x67e705ef479f17df, 0x0f119b2ec8dee795}, {0x08649cd7c3672efb, 0x8e743a22cc50cbb6, 0x3607da3ca144f575, 0x02119839fa87ed3f}, {0x251206daf5abfe56, 0x27ce96cc7a363c21, 0x32b871b72ec642f2, 0x12a8f22a2af49d34}, {0x96df872ba8f47098, 0x99f8475b3eb4c3d1, 0x81ebd14661c9e2da, 0x04e6711cd8706b5a}, {0xb40da58ddc565e24, 0xb80cbd116146c8ed, 0x8788f5bc27e023c6, 0x03cee77f668dce31}, {0x9ba7b1a879140736, 0x6006d57e2685679d, 0x580ffa13400c12e1, 0x0ea5ffe642ef47e6}, {0x9b032dd8a691ce68, 0x3964986f82a72de1, 0xa1a2b7dabc4410b7, 0x056c41e1e1e5ae33}},
		{{0x031fb535dcbc67b8, 0x64439d3e5bb9df4b, 0x62ecb03eed6d0b0d, 0x0d897548b1d7f8a1}, {0xd23c311c9fee656b, 0x5070f4ad3cfbecf7, 0xf447524657770730, 0x11d8de9a5eaa0e00}, {0xfd4c53c46e4831e2, 0xada6154f57cb92aa, 0x8757b9e60a946278, 0x0b82e574ca5b8c23}, {0xacf667c59710d57c, 0x834d764ddb2f4704, 0x68ab73ce6c8d66e4, 0x105d0586a91de150}, {0xde098a9172efc241, 0x73db24b2cd893407, 0x9815de2db14d7145, 0x0142e28adc74e85a}, {0x7a087b1d9b426be3, 0xac756670daf14dc6, 0x7033635e8c10d95b, 0x0766e61e6ea15c86}, {0x79e84da1f02284a6, 0xe5e2c2acf38dce66, 0x845de05b43eb7520, 0x0bf9dc6c45e34983}, {0x101f998fe367409a, 0xda4d6f8f4f21202f, 0x8f800ef12d4b5d7e, 0x076d447190559032}, {0xe7d03d57a99340ad, 0x86d40ba1e1c0e4dd, 0xce52f7a1585a8ff5, 0x11aa7bb4f87d55a6}},
		{{0x73a425a892e378a3, 0x111c95e9646fb2c0, 0x1c648c3b8256d069, 0x0b83c1e527ccf878}, {0x11681c6f2e8e3de1, 0x05db80a0d78346e7, 0x6134664c1da733d5, 0x125b783c25ea4b96}, {0x584515ff335ec6bc, 0x09debef86a081452, 0x60ac5e26e495c951, 0x0a7d3ea7259bbaec}, {0x3d0e2a9c624e557c, 0x5c33a14154b06bd0, 0x281baaaf30447267, 0x110b0ef03da9f033}, {0x7263c0311088de34, 0x5ac38ec69634a23d, 0x4bd0423837fc432e, 0x081bb1983374df93}, {0xc1679661cb666841, 0xebcb8daff0af1286, 0x6c35d7014f750793, 0x0693b9f5aec72de9}, {0x54359133114bd015, 0x849e55c5828cd665, 0xcccc358e5387e1ed, 0x0be5f53e15ed7ce3}, {0x140022606b83d9ef, 0xb0fde9ea1e9a7eac, 0xf5de2ffb3bfa745f, 0x0ff584033c030b1f}, {0xee1ce8d779e03a5e, 0xf5b30ca9530800ab, 0xa2f4e704492819a0, 0x06a394a43c4bf4bc}},
		{{0x669505a763efe85e, 0xbfda067310c965c7, 0xe51682870c4f5aa5, 0x06092d79f9403985}, {0x2c4f136777ad0c3e, 0x4c72b9c801aedde5, 0x5a6a67d71469977e, 0x07ab1f035b584acf}, {0x95e30c069856816b, 0x57088a2850d272ac, 0xc0481ebdf96dec21, 0x017cb5b935722127}, {0xb152fd4625bed19b, 0x2fb7dcf9a0969f8a, 0xcd6bdbeed863cf6e, 0x067c6791951929ab}, {0xc13efa4b070b0c19, 0xae7d18258bed40e1, 0x903f274d177e7f22, 0x08f7de6e002d1c47}, {0x3e4697564bc912ac, 0x83ae7e929da399bf, 0xeb8c8cdfefba2f40, 0x0a56d3d99ad63027}, {0xc24f1e31b710510a, 0x077e850a605fc29e, 0xfd3765a1d4578f00, 0x0a2fbfb5e91db853}, {0xed4c3f191f274364, 0xc52a255e36d7035c, 0x1dc8610dcc030fe8, 0x0fdf2dc0db3b9707}, {0xe81189ccc902be3f, 0xe2cedc022265f807, 0x754b889481794974, 0x07762f2d12325e93}},
		{{0x52d76e26a320e31b, 0xacec7b9b79b4a3f6, 0x22e830825bb17602, 0x11b3454babef1753}, {0x3a33b85deff6b31a, 0xb9cc73e4bf8991d4, 0x20811b8640420e51, 0x07bcae93cf275ff8}, {0x01af46da133dea91, 0x6f82c2c171e933c9, 0x86acf9d43b8c2ce4, 0x0ed734009195d09c}, {0x6a236569bb298d23, 0xbac1295b76556ea2, 0xbe6b3e706ebe64d9, 0x07854a8565be1097}, {0x296bbc743760a682, 0xd0f33851bcb3ffc5, 0xb4d389181255f4a5, 0x07fcdfd0200dc5b6}, {0x0a5fd806b745c9a6, 0x119fa740e62c9794, 0xbd6302844eb3ba45, 0x117e6fcdbd971674}, {0x917e35959f72e18d, 0xe7e9352740fa6ffb, 0xe5f38efe3ad5a268, 0x099db783dc2a7543}, {0xe2ae99ef3ac688c7, 0x0d2360639b9332da, 0xc25d3ccb737ee2fd, 0x0c9b240b4558d774}, {0x0004f68ff034e84e, 0x9846f80d59678642, 0x8151c89d5207ab94, 0x0568f7f5ce64bb2b}},
	},
	mds: [][]fr.Element{
		{{0xa0ff5996451ec4bb, 0x9276ab1f357ae5cf, 0x2d956ea52b149d8d, 0x07c489ce0560828d}, {0x17cdd58ce4844882, 0x9abad2b212b70941, 0x4b8d9702abe7e403, 0x1014e6e005ecf0df}, {0x9ef7de73a1aec523, 0xf389b690528977ba, 0xd3c4c31b68625f75, 0x12724501a63ca1cf}, {0x716786a78839cb4d, 0x0a01c3165a1a3815, 0x052c0d8b1cc52e16, 0x07ee847c1a1dd83c}, {0xce5c6901021e2487, 0xf6f2e5321710be3d, 0x46cf9c44a28f55f3, 0x021642f8cd75ff59}, {0xf5b0f392c8e8d52b, 0xd0dcabdcca7704b5, 0x2e10a8aa85ae8e80, 0x054eeaa331544fab}, {0x93cb745d05fdaf5a, 0xa2e6ac7457add729, 0x5da540f11f3c3382, 0x0181e0c4dbdf4985}, {0x1ec500bc8d9b9c2b, 0xacac86c80d120305, 0x792646c8fff4f30d, 0x0ff1eeb4035317dc}, {0xac9f9e6d0fada766, 0xd5ffe0e81edbc51c, 0x06ebc7840e3969e1, 0x0126e084bccb4bfa}},
		{{0x56c131da53afbdb4, 0x0ec6863ce72a5aae, 0x9e1862ccc208a7f3, 0x0276f19ecadc9d56}, {0xe8f9ad1dd85d1036, 0x15659adb1b0fd7e1, 0x2ea0b24c9e904ef4, 0x004ed317c6f2ae32}, {0x0a610c784bd0ebae, 0xb293e77cdd219c9b, 0x4ceb7b16b5593793, 0x09e489ab29ed7cb4}, {0x3cd4f80f8fbcb232, 0xe41c44be9185a5f1, 0xb7d6bb0a9c01fb2f, 0x0909f947dc607d07}, {0xfe2b5c6e1864536e, 0xb2290490c6ad8e24, 0xe862b60d78cdb75a, 0x07ea87afec7a832b}, {0x3cfbe0e5276900c7, 0xfe20ae2081c38f27, 0xd79fb7f3d916fad6, 0x0b97ad6738786bff}, {0xf0a570305548c693, 0x787bec3f7b232952, 0x61b8b60511d82f0d, 0x09adec1319e6586a}, {0xf27bb51506eb3b06, 0x4f62ee1e4a8e83af, 0x2e412289223c8a59, 0x1219e78445fa9727}, {0x61c38461e8d4b652, 0x3acd83137d637d3c, 0x7942a1430d9db891, 0x04ad13c355731790}},
		{{0x48d5a7e9c721b604, 0x49536b573d3a347f, 0xa9d9f00e3d4c1d87, 0x0b44723c36272a63}, {0x79bc7c81be975b32, 0x60ce64501fbf66c3, 0x415ba280f34a5b27, 0x128783206f215d8e}, {0x0f95294f942c3ef0, 0xb57f2de5bb440f9d, 0xfec75b58dcaa6ba5, 0x0bb0eed0af54697a}, {0x3d42671f812e2810, 0x1d4659b536d16a83, 0xc8fdcc7c3ed4ae2e, 0x056eeb639efb83d2}, {0x59a81763ecb83686, 0xac7c45260977453d, 0x8b6f72edd1ef4c98, 0x011a8e7e3d47d784}, {0x7ec60130abba7c54, 0x27709001c9c7a9d0, 0x112534a81696a5a2, 0x0444169d43695586}, {0xd2c7df98f92cc0f7, 0x031604ffc6eaace3, 0xbd081d040224cf80, 0x0642a866027f686c}, {0x29b08ea665f37c6f, 0x52f841b0544030e3, 0x0be4369d012efbc8, 0x07e551a1d3614b88}, {0x18ad6efd1c9e6fb8, 0xc15874a771ee507f, 0x657af5a66eb20f3d, 0x0900edb6adc566c5}},
		{{0x74fd97f590d974bf, 0x1bfde6bacd14d792, 0x1ae8ea0166ad225d, 0x0835c6c592d5a1bd}, {0x45d643614731816a, 0x0a404ca99ce0c3a9, 0x727f954047e7d14b, 0x0b7b32f4d74a1cb4}, {0xa460843bc4fa843e, 0xc83dcbc79183b184, 0x407a1f22c005ece0, 0x122d75624714a2f1}, {0xf2bfb3b6beb937d2, 0xee87228b78baaaaa, 0x5715d0423053f753, 0x0006e39761f32669}, {0x3c81b440bcb3abd7, 0x26e7d1690eae3ea1, 0x2f988ab8a54a233e, 0x009537d5aa919dc7}, {0x96939ccbe81ef9e8, 0x437e81da52f1ed09, 0x93feadaadaa8c1ed, 0x00928fc698de6f40}, {0x482349b3ff559dde, 0xee877bba744415aa, 0x429dadab924fbb5a, 0x10425bd469d713b2}, {0x0de7580d16c944be, 0x84488014e6b8ecd6, 0x9597a4f3761de874, 0x0e8399b34c4e55b1}, {0x0f5cbbb966951c6d, 0xd4826170928460bc, 0x09091c59aab64090, 0x0c8560c7cf7d5285}},
		{{0x1d1ed0ec96fa47b3, 0x4bba69c1c8af3c3b, 0xa4c4e146876f810f, 0x029191da777630de}, {0xe76aa4b7cfe054c0, 0x31830dd925fe6ae1, 0x632d701d19f82e1c, 0x0e068d5dce17c723}, {0x72e51d33e10e93e7, 0x9fed4525b627e09f, 0x74f26acd9e28b2e3, 0x0a6267d35dbfca72}, {0xa1bf08df6a217ae6, 0x49dd4bc7ab48e3ad, 0xd7cc721a618ebe9b, 0x10cfe63576d446c5}, {0xba0b87e59e7d5df5, 0xbbc8a398ad4e857b, 0x5ca590b8b81cc095, 0x0a602fe114e86e08}, {0xec4d83c88ccbf59e, 0x9a1ed043cfcdd331, 0xd9ac8f46eba93405, 0x0b787f74d1ff53d8}, {0xbbb07cee48f7fcc3, 0x3dd0bd16c5eccf09, 0x97d112eb4c361a3c, 0x0f8d5b82f8262702}, {0x01e3f318a4637db8, 0x8b932703e3bf86ec, 0x49bb3a924c441111, 0x0129c898dadb0772}, {0xf95379c12c639548, 0xd4d27e771fe0fa2b, 0xafd3cd946b1fc3c4, 0x10a9041b061eec44}},
		{{0xd5519520aa3b6945, 0x1c28a95287cf0c43, 0x5ab01e774896888f, 0x068a259dd9cdb96d}, {0x436834ba5652ad53, 0x504c9558433126d3, 0xa8e0d3bb97170d77, 0x04807cf5428d2b0d}, {0x7d8b66290658e774, 0xf7818f6d11ecb2e7, 0xc170de98db41e24f, 0x08219b6db85e907f}, {0xe9c2e9ff739ef4d5, 0x36a3805682d7b9e4, 0x5174abdbd3aa4b8f, 0x0f1c3eb12dd3e29b}, {0xb804bda0c0283aca, 0xf4473eef44d8fcfa, 0x0962630bf55c59ea, 0x0b4a791797f0f583}, {0x537f0bd314f3775f, 0x1f87d010d8cc5ca4, 0xfabcaa7e5249a4a9, 0x0a5395e521eea63c}, {0xd5e4d428bf7bd007, 0x2aef6f1a388d2648, 0xf69b7bd77f248d32, 0x10a38a5004aeb331}, {0x358c21eb130a1357, 0x2f624fd567c7c25d, 0x82bbcd331710b8fd, 0x0670e0d5ed0ccc89}, {0x1237211ba7c59d80, 0x6e117aadb280e737, 0x07ebd087f668386b, 0x07746260f538191d}},
		{{0x8e7829a4751e89ee, 0x848e56c335e3a12e, 0x29c908ead127f045, 0x05e57c1910b39b28}, {0x294b858311a7fdd3, 0xcc8c90cf0617bb52, 0xd3c69c0fc17da8e7, 0x0b4f4e4f06e1abb7}, {0x2240052b4344b3fd, 0x435ec2c964e47aaf, 0xfde4dd1bf7e1c89b, 0x10d7da39b72732f4}, {0x70cc9167a2d42653, 0x4bf5ed851ba1cf69, 0xe83e4b7237e6dd92, 0x03a4f0568523ebea}, {0x8c98fcdcee6e2d4a, 0x1018cee7488afd77, 0xf6dd27bfb50d66e4, 0x087c446859dea34f}, {0x96fbd889f281ecab, 0xacdc637cd8e936bb, 0x6c4ca2fbd56f689e, 0x01a6f9a17aadab0a}, {0xc8899a5685d661ef, 0xd5e8af1b267da15a, 0x0a4167e3a8092df0, 0x0d1d403ae36cb475}, {0x1b372eb038f1d6aa, 0xda3ff5599c76310e, 0xf893643f6a0f4b44, 0x0d527aafcd34d575}, {0x821539ff58ba3fa5, 0x3f4921fe5d39278e, 0xc589bc253357a018, 0x05fa9c65a0559aa7}},
		{{0x609a695ab80eef0c, 0xb695213c3bdcc46b, 0xf0d8443caf5a82b0, 0x0032bb46252d8695}, {0xc1001db8b4edc31d, 0x0f8b7b0e33473549, 0xe66463c704958f35, 0x124ed04187aeb012}, {0x9af6eb97f8eae75a, 0x2f261a90f6e1a52f, 0x098ad8372cc50f6c, 0x1174b5750ae630e9}, {0x5bef29ea97aefff8, 0x2f6ce52b95b765ee, 0xa4f781daecd045a3, 0x080bc07c2ef70f59}, {0xcefcd3f4746b4735, 0xa64ad0ba0f804032, 0x90b2c5204c7fd7b9, 0x0e460b734a86e560}, {0xf633bbd438015408, 0x9657a727cc6484e9, 0xc964b5a53c3d7150, 0x0880281fd8a3f511}, {0x53f8a8cea9d2a746, 0x72c63229d3162cdf, 0x8bbd6f7fcb44fc6c, 0x05ca6826746a22dc}, {0xc1ca807099d36b4d, 0xcd02830b822e54dc, 0xe1c7646e108ebc3a, 0x0d475af01c2f57fd}, {0x1a6ac1af3dd2b4e2, 0x5762e7f7ba929387, 0x25055588fe761a90, 0x05b9f81e3e3094bb}},
		{{0xb2cedd0898b3e582, 0xb3d071a6cb66c5c3, 0x1d05163a203ae2e6, 0x058a772299fcca47}, {0xd6601bcfc0fcf2c2, 0xa5afa02c9174c579, 0x1bf8743dacf5352c, 0x07b091ce13dabad2}, {0xabf4c7b54929c90d, 0x007262cac1cd32ee, 0xd57c119a2e61c006, 0x07d9618e5e94e089}, {0x7007dee4dee0e081, 0xced91ec8f889abf3, 0x49ca5e86b442f8d7, 0x0aea6fb4b64c0fb3}, {0xc3a4b73924bd295b, 0xeba6c3c85652a152, 0x3ea4d26f215db9db, 0x0155600f99d91760}, {0x1211bb973b83dfb3, 0x176726c9685f98bc, 0x857004c75473c180, 0x0ac042875c7861ed}, {0x5f7070d35167a1b4, 0x8311d7027a6f2063, 0xe1132d4b32e592fc, 0x0c4c3a2a77ca70e6}, {0xbf91697a7cd38ea5, 0xcef0c4bf9ad26864, 0xeeaabaee9241a5eb, 0x08e8f8122ac8008b}, {0x0582342c9a6f446b, 0xef600875aaa51cc5, 0x4cd74fb62ac12d02, 0x05cc6a18ea5d1e12}},
	},
}
